package slideshow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"autovid/internal/subtitle"
)

// Fetcher assembles slideshow source clips: it windows the subtitle track,
// extracts one keyword per window, and pulls a matching stock clip from the
// two search providers, alternating between them by window index to spread
// rate-limit load.
type Fetcher struct {
	pexelsKey string
	giphyKey  string
	pexelsURL string
	giphyURL  string
	extractor *KeywordExtractor
	http      *http.Client
	log       *logrus.Logger
}

// NewFetcher creates a stock-media fetcher.
func NewFetcher(pexelsKey, giphyKey string, extractor *KeywordExtractor, log *logrus.Logger) *Fetcher {
	return &Fetcher{
		pexelsKey: pexelsKey,
		giphyKey:  giphyKey,
		pexelsURL: "https://api.pexels.com/videos/search",
		giphyURL:  "https://api.giphy.com/v1/gifs/search",
		extractor: extractor,
		http:      &http.Client{Timeout: 60 * time.Second},
		log:       log,
	}
}

// windowSeconds is the slideshow slide length; each window of captions gets
// one clip, later normalized to exactly this many seconds.
const windowSeconds = 6

// Fetch downloads one clip per caption window of the SRT file into destDir
// and returns how many clips landed on disk. Per-window failures (no search
// hit, download error) are logged and skipped; only a completely empty
// result is the caller's problem.
func (f *Fetcher) Fetch(ctx context.Context, srtPath, destDir string) (int, error) {
	raw, err := os.ReadFile(srtPath)
	if err != nil {
		return 0, fmt.Errorf("reading subtitle file: %w", err)
	}

	captions := subtitle.ParseSRT(string(raw))
	groups := GroupByInterval(captions, windowSeconds)

	downloaded := 0
	for i, group := range groups {
		keyword := f.extractor.Extract(ctx, group)

		var clipURL string
		var provider string
		if i%2 == 0 {
			provider = "pexels"
			clipURL, err = f.searchPexels(ctx, keyword)
		} else {
			provider = "giphy"
			clipURL, err = f.searchGiphy(ctx, keyword)
		}
		if err != nil {
			f.log.WithError(err).WithFields(logrus.Fields{
				"provider": provider,
				"keyword":  keyword,
			}).Warn("stock media search failed, skipping window")
			continue
		}
		if clipURL == "" {
			f.log.WithFields(logrus.Fields{
				"provider": provider,
				"keyword":  keyword,
			}).Info("no stock media hit, skipping window")
			continue
		}

		fileName := fmt.Sprintf("group_%d_%s.mp4", i, sanitizeKeyword(keyword))
		if err := f.download(ctx, clipURL, filepath.Join(destDir, fileName)); err != nil {
			f.log.WithError(err).WithField("url", clipURL).Warn("clip download failed, skipping window")
			continue
		}
		downloaded++
	}
	return downloaded, nil
}

type pexelsResponse struct {
	Videos []struct {
		VideoFiles []struct {
			Link     string `json:"link"`
			FileType string `json:"file_type"`
			Width    int    `json:"width"`
			Height   int    `json:"height"`
		} `json:"video_files"`
	} `json:"videos"`
}

// searchPexels returns the highest-resolution mp4 rendition of the first
// search hit, or "" when there is none.
func (f *Fetcher) searchPexels(ctx context.Context, keyword string) (string, error) {
	endpoint := f.pexelsURL + "?" + url.Values{
		"query":    {keyword},
		"per_page": {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", f.pexelsKey)

	var parsed pexelsResponse
	if err := f.getJSON(req, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Videos) == 0 {
		return "", nil
	}

	best := ""
	maxResolution := 0
	for _, file := range parsed.Videos[0].VideoFiles {
		if file.FileType != "video/mp4" {
			continue
		}
		if res := file.Width * file.Height; res > maxResolution {
			best = file.Link
			maxResolution = res
		}
	}
	return best, nil
}

type giphyResponse struct {
	Data []struct {
		Images map[string]struct {
			Mp4    string `json:"mp4"`
			Width  string `json:"width"`
			Height string `json:"height"`
		} `json:"images"`
	} `json:"data"`
}

// searchGiphy returns the highest-resolution mp4 rendition of the first GIF
// hit, or "" when there is none.
func (f *Fetcher) searchGiphy(ctx context.Context, keyword string) (string, error) {
	endpoint := f.giphyURL + "?" + url.Values{
		"api_key": {f.giphyKey},
		"q":       {keyword},
		"limit":   {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var parsed giphyResponse
	if err := f.getJSON(req, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Data) == 0 {
		return "", nil
	}

	best := ""
	maxResolution := 0
	for _, image := range parsed.Data[0].Images {
		if image.Mp4 == "" {
			continue
		}
		w, _ := strconv.Atoi(image.Width)
		h, _ := strconv.Atoi(image.Height)
		if res := w * h; res > maxResolution {
			best = image.Mp4
			maxResolution = res
		}
	}
	return best, nil
}

func (f *Fetcher) getJSON(req *http.Request, out interface{}) error {
	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("search returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// download streams the remote asset to disk.
func (f *Fetcher) download(ctx context.Context, clipURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, clipURL, nil)
	if err != nil {
		return err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned %s", resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(destPath)
		return err
	}

	f.log.WithField("path", destPath).Info("downloaded slideshow clip")
	return nil
}

func sanitizeKeyword(keyword string) string {
	return strings.ReplaceAll(strings.TrimSpace(keyword), " ", "_")
}
