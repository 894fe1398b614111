package models

// Generation requests and results are ephemeral: they live only in the
// feature's last-result buffer for copy/download and are never persisted.

type BlogRequest struct {
	ProductName string `json:"product_name"`
	Tone        string `json:"tone"`
	WordCount   int    `json:"word_count"`
}

type BlogResult struct {
	GeneratedBlog string `json:"generated_blog"`
}

type VideoScriptRequest struct {
	ProductName string `json:"product_name"`
	Tone        string `json:"tone"`
	Duration    int    `json:"duration"`
}

type VideoScriptResult struct {
	GeneratedScript string `json:"generated_script"`
}

type ImageRequest struct {
	ProductName string `json:"product_name"`
	Style       string `json:"style"`
	Platform    string `json:"platform"`
	N           int    `json:"n"`
}

// Image is one generated image reference. ImageURL is a path relative to the
// API base; Filename is the suggested name for a local download.
type Image struct {
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

type ImageResult struct {
	ImagePrompt string  `json:"image_prompt"`
	Images      []Image `json:"images"`
}
