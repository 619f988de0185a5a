package classify

import (
	"fmt"
	"unicode/utf8"

	"github.com/ospolicy/licensegen/internal/model"
)

// maxPromptTextChars bounds how much license text goes into a prompt. License
// texts run to tens of kilobytes; the opening 3000 characters carry the
// operative terms.
const maxPromptTextChars = 3000

// buildClassifyPrompt constructs the classification prompt for one license.
func buildClassifyPrompt(id, text string) string {
	if len(text) > maxPromptTextChars {
		// Back off to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxPromptTextChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	return fmt.Sprintf(`Analyze the following license and provide detailed information in JSON format.

License ID: %s
License Text (first %d chars):
%s

Provide a JSON response with the following structure:
{
    "license_id": "%s",
    "category": "permissive|copyleft_weak|copyleft_strong|proprietary|public_domain",
    "permissions": {
        "commercial_use": true/false,
        "distribution": true/false,
        "modification": true/false,
        "patent_grant": true/false,
        "private_use": true/false
    },
    "conditions": {
        "disclose_source": true/false,
        "include_license": true/false,
        "include_copyright": true/false,
        "include_notice": true/false,
        "state_changes": true/false,
        "same_license": true/false,
        "network_use_disclosure": true/false
    },
    "limitations": {
        "liability": true/false,
        "warranty": true/false,
        "trademark_use": true/false
    },
    "compatibility": {
        "can_combine_with_permissive": true/false,
        "can_combine_with_weak_copyleft": true/false,
        "can_combine_with_strong_copyleft": true/false,
        "static_linking_restrictions": "none|weak|strong",
        "dynamic_linking_restrictions": "none|weak|strong"
    },
    "obligations": [
        "List of specific obligations when using this license"
    ],
    "key_requirements": [
        "List of key requirements for compliance"
    ]
}`, id, maxPromptTextChars, text, id)
}

// buildRulesPrompt constructs the compatibility-rule prompt for one license.
func buildRulesPrompt(id string, category model.Category) string {
	return fmt.Sprintf(`Based on the %s license with category %s,
provide detailed compatibility rules in JSON format:

{
    "static_linking": {
        "compatible_with": ["list of compatible license IDs or categories"],
        "incompatible_with": ["list of incompatible license IDs or categories"],
        "requires_review": ["list of licenses requiring case-by-case review"]
    },
    "dynamic_linking": {
        "compatible_with": ["list"],
        "incompatible_with": ["list"],
        "requires_review": ["list"]
    },
    "distribution": {
        "can_distribute_with": ["list"],
        "cannot_distribute_with": ["list"],
        "special_requirements": ["list of special requirements"]
    },
    "contamination_effect": "none|module|derivative|full",
    "notes": "Additional compatibility notes"
}`, id, category)
}
