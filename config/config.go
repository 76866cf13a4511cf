package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Settings holds everything the service reads from the environment.
// Provider and model selection live here (passed into each job) instead of
// mutable package-level state, so concurrent jobs never share them.
type Settings struct {
	Port string

	// Script generation
	ScriptProvider    string // "together" or "huggingface"
	ScriptModel       string
	TogetherAPIKey    string
	TogetherBaseURL   string
	HuggingFaceURL    string
	HuggingFaceAPIKey string

	// Speech synthesis
	TTSEndpoint string

	// Stock media search
	PexelsAPIKey string
	GiphyAPIKey  string

	// External python processes
	PythonBin     string
	WhisperScript string
	NerScript     string

	StagingRoot string
}

// Load reads .env (if present) and assembles the settings struct.
// Missing optional values fall back to the same defaults the service has
// always shipped with.
func Load() *Settings {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Settings{
		Port:              getenv("PORT", "5000"),
		ScriptProvider:    getenv("SCRIPT_PROVIDER", "together"),
		ScriptModel:       getenv("SCRIPT_MODEL", "meta-llama/Meta-Llama-3.1-8B-Instruct-Turbo"),
		TogetherAPIKey:    os.Getenv("TOGETHER_API_KEY"),
		TogetherBaseURL:   getenv("TOGETHER_BASE_URL", "https://api.together.xyz/v1"),
		HuggingFaceURL:    getenv("HUGGINGFACE_URL", "https://api-inference.huggingface.co/models/Qwen/Qwen3-32B"),
		HuggingFaceAPIKey: os.Getenv("HUGGINGFACE_API_KEY"),
		TTSEndpoint:       getenv("TTS_ENDPOINT", "https://tiktok-tts.weilnet.workers.dev/api/generation"),
		PexelsAPIKey:      os.Getenv("PEXELS_API_KEY"),
		GiphyAPIKey:       os.Getenv("GIPHY_API_KEY"),
		PythonBin:         getenv("PYTHON_BIN", "python"),
		WhisperScript:     getenv("WHISPER_SCRIPT", "scripts/whisper_srt.py"),
		NerScript:         getenv("NER_SCRIPT", "scripts/ner.py"),
		StagingRoot:       getenv("STAGING_ROOT", "data"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
