package external

// WikipediaSearchResponse is the MediaWiki action=query&list=search answer.
type WikipediaSearchResponse struct {
	Query struct {
		Search []struct {
			Title  string `json:"title"`
			PageID int64  `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

// WikipediaPageResponse is the action=query&prop=extracts|info|pageprops answer (formatversion=2).
type WikipediaPageResponse struct {
	Query struct {
		Pages []WikipediaPage `json:"pages"`
	} `json:"query"`
}

type WikipediaPage struct {
	PageID    int64             `json:"pageid"`
	Title     string            `json:"title"`
	Missing   bool              `json:"missing"`
	Invalid   bool              `json:"invalid"`
	Extract   string            `json:"extract"`
	FullURL   string            `json:"fullurl"`
	PageProps map[string]string `json:"pageprops"`
}

// WikipediaError is the error envelope of the action API.
type WikipediaError struct {
	Error struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}
