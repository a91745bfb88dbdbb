package models

// NumberFrequency represents how often one ball number appeared in the dataset
type NumberFrequency struct {
	Rank   int
	Number int
	Count  int
	Share  float64 // Percentage as 0-100
}

// FrequencyReport represents aggregated appearance statistics over the dataset
type FrequencyReport struct {
	TotalDraws      int
	MaxDrawNumber   int
	DistinctNumbers int
	ChiSquared      float64 // Uniformity statistic over the observed numbers
	Frequencies     []NumberFrequency
}
