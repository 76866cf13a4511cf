package ffmpeg

import (
	"fmt"
	"strings"
)

// captionStyle is the fixed force_style clause burned into every render:
// solid yellow bold Arial, size 24, raised 50px off the bottom edge.
const captionStyle = "force_style='PrimaryColour=&H0000FFFF,Bold=1,MarginV=50,FontName=Arial,FontSize=24'"

// escapeSubtitlePath makes a filesystem path safe to embed in a filter
// expression: forward slashes only, colons escaped (Windows drive letters
// would otherwise terminate the filter option), whole path single-quoted.
func escapeSubtitlePath(subtitlePath string) string {
	safe := strings.ReplaceAll(subtitlePath, "\\", "/")
	safe = strings.ReplaceAll(safe, ":", "\\:")
	return "'" + safe + "'"
}

// VideoFilter builds the scale+crop+caption-burn filter expression for the
// Reddit Story and Quiz pipelines. The frame is scaled up to cover the target
// and center-cropped; an unrecognized aspect ratio passes through unscaled.
func VideoFilter(aspectRatio, subtitlePath string) string {
	var scaleCrop string
	switch aspectRatio {
	case "16:9":
		scaleCrop = "scale=1920:1080:force_original_aspect_ratio=increase,crop=1920:1080"
	case "9:16":
		scaleCrop = "scale=1080:1920:force_original_aspect_ratio=increase,crop=1080:1920"
	default:
		scaleCrop = "scale=iw:ih"
	}
	return fmt.Sprintf("%s,subtitles=%s:%s", scaleCrop, escapeSubtitlePath(subtitlePath), captionStyle)
}

// SlideshowFilter builds the scale+pad+caption-burn filter expression for the
// slideshow pipeline. Stock clips arrive in arbitrary shapes, so they are
// letterboxed into the target frame instead of cropped.
func SlideshowFilter(aspectRatio, subtitlePath string) string {
	var scalePad string
	switch aspectRatio {
	case "16:9":
		scalePad = "scale='if(gt(a,16/9),1920,-2)':'if(gt(a,16/9),-2,1080)',pad=1920:1080:(ow-iw)/2:(oh-ih)/2"
	case "9:16":
		scalePad = "scale='if(gt(a,9/16),1080,-2)':'if(gt(a,9/16),-2,1920)',pad=1080:1920:(ow-iw)/2:(oh-ih)/2"
	default:
		scalePad = "scale=iw:ih"
	}
	return fmt.Sprintf("%s,subtitles=filename=%s:%s", scalePad, escapeSubtitlePath(subtitlePath), captionStyle)
}
