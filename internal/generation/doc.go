// Package generation drives the content-generation pipeline: it builds
// prompts from extracted document text, invokes a pluggable LLM provider
// with bounded retries, and hands the raw response to the deck parser and
// structurer. The Provider interface defined here is the boundary between
// the pipeline and the backend implementations in internal/provider.
package generation
