package embeddings

// Known embedding models.
const (
	// DefaultModel has a good balance of quality and cost.
	DefaultModel = "text-embedding-3-small"
	ModelSmall   = "text-embedding-3-small"
	ModelLarge   = "text-embedding-3-large"
	ModelAda     = "text-embedding-ada-002"
)

// fallback values for model names not in the tables below
const (
	fallbackDimensions      = 1536
	fallbackPricePerMillion = 0.02
)

// modelDimensions maps model names to their embedding vector width.
var modelDimensions = map[string]int{
	ModelSmall: 1536,
	ModelLarge: 3072,
	ModelAda:   1536,
}

// modelPricePerMillion maps model names to USD per million tokens.
var modelPricePerMillion = map[string]float64{
	ModelSmall: 0.02,
	ModelLarge: 0.13,
	ModelAda:   0.10,
}

// ModelDimensions returns the embedding vector width for a model name,
// falling back to 1536 for unrecognized models.
func ModelDimensions(model string) int {
	if d, ok := modelDimensions[model]; ok {
		return d
	}
	return fallbackDimensions
}

// ModelPrice returns the USD price per million tokens for a model name,
// falling back to the small-model price for unrecognized models.
func ModelPrice(model string) float64 {
	if p, ok := modelPricePerMillion[model]; ok {
		return p
	}
	return fallbackPricePerMillion
}

// EstimateTokens approximates the provider's token count for a text using the
// English-text heuristic of one token per four characters, rounded up.
// Non-English or code-heavy text will diverge from the provider's real count.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// EstimateCost returns the approximate USD cost of embedding the given number
// of tokens with the given model.
func EstimateCost(tokens int, model string) float64 {
	return float64(tokens) / 1_000_000 * ModelPrice(model)
}
