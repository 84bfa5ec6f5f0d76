package leadgen

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

var jsonBlockPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSON parses a model response into v. Responses are often
// wrapped in markdown fences or prose, so it tries the raw text first
// and falls back to the outermost brace-delimited block.
func ExtractJSON(raw string, v interface{}) error {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	block := jsonBlockPattern.FindString(cleaned)
	if block == "" {
		return eris.New("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return eris.Wrap(err, "parse embedded JSON block")
	}
	return nil
}
