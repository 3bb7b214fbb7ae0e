// Package gen calls the Gemini generative-image API to produce raw sprite
// art for the asset pipeline.
//
// The client performs one synchronous HTTPS POST per invocation: build the
// generateContent request, send it with a fixed timeout, walk the response
// parts for inline image data, and return the decoded bytes. There are no
// retries; a failed generation is rerun by the developer.
package gen
