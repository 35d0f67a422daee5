package models

// BookDoc is a single document from the Open Library search API.
type BookDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	CoverID          *int     `json:"cover_i"`
	FirstPublishYear *int     `json:"first_publish_year"`
	Languages        []string `json:"language"`
	Subjects         []string `json:"subject"`
}

// BookSearchResult is the normalized body of a book search.
type BookSearchResult struct {
	NumFound int       `json:"numFound"`
	Docs     []BookDoc `json:"docs"`
}
