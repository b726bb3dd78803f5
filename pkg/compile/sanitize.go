package compile

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// sanitizeHTML filters an html-type field's raw content through a post-style
// allowlist. This is the one path that is sanitized rather than escaped: the
// content is author-supplied markup, not character data.
func sanitizeHTML(raw string) string {
	return contentSanitizer().Sanitize(raw)
}

func contentSanitizer() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class", "id").Globally()
		policy.AllowElements("br", "hr", "span", "figure", "figcaption")
		contentPolicy = policy
	})
	return contentPolicy
}
