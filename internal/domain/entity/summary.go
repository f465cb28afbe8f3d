package entity

type Summary struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}
