package whisper

import "fmt"

// ModelSource describes where the supported model comes from.
type ModelSource struct {
	Name     string
	FileName string
	URL      string
}

var LargeV3 = ModelSource{
	Name:     "large-v3",
	FileName: "ggml-large-v3.bin",
	URL:      "https://huggingface.co/ggerganov/whisper.cpp/resolve/main/ggml-large-v3.bin",
}

// DownloadHint returns the command that fetches the model to path.
func (m ModelSource) DownloadHint(path string) string {
	return fmt.Sprintf("wget %s -O %s", m.URL, path)
}
