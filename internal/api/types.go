package api

type NamedTextPayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type ComparePayload struct {
	Reference  NamedTextPayload   `json:"reference"`
	Candidates []NamedTextPayload `json:"candidates"`
}

type MatrixPayload struct {
	Documents []NamedTextPayload `json:"documents"`
}

type ReferenceResponse struct {
	Name            string `json:"name"`
	WordCount       int    `json:"word_count"`
	UniqueWordCount int    `json:"unique_word_count"`
}

type PairResultResponse struct {
	Name            string  `json:"name"`
	Score           float64 `json:"score"`
	Bucket          string  `json:"bucket"`
	WordCount       int     `json:"word_count"`
	UniqueWordCount int     `json:"unique_word_count"`
	CommonWordCount int     `json:"common_word_count"`
}

type CompareResponse struct {
	Reference ReferenceResponse    `json:"reference"`
	Results   []PairResultResponse `json:"results"`
}

type DocumentSummaryResponse struct {
	Name              string  `json:"name"`
	AverageSimilarity float64 `json:"average_similarity"`
	Bucket            string  `json:"bucket"`
	WordCount         int     `json:"word_count"`
	UniqueWordCount   int     `json:"unique_word_count"`
}

type MatrixResponse struct {
	Names     []string                  `json:"names"`
	Matrix    [][]float64               `json:"matrix"`
	Documents []DocumentSummaryResponse `json:"documents"`
}
