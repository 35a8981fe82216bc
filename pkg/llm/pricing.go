package llm

// modelPricing is USD per 1M tokens.
type modelPricing struct {
	InputPerM  float64
	OutputPerM float64
}

// pricingTable maps model names to their pricing. Unknown models fall
// back to defaultPricing so cost records are never silently zero.
var pricingTable = map[string]modelPricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
	"gemini-2.5-pro":        {InputPerM: 1.25, OutputPerM: 10.00},
	"gemini-2.0-flash":      {InputPerM: 0.10, OutputPerM: 0.40},
}

var defaultPricing = modelPricing{InputPerM: 1.25, OutputPerM: 10.00}

// Cost returns the USD cost of a call with the given token counts.
func Cost(model string, inputTokens, outputTokens int) float64 {
	p, ok := pricingTable[model]
	if !ok {
		p = defaultPricing
	}
	return float64(inputTokens)/1e6*p.InputPerM + float64(outputTokens)/1e6*p.OutputPerM
}
