// Package provider defines the uniform capability the extraction pipeline
// depends on, plus the prompts, schemas and payload hygiene shared by the
// concrete provider clients.
package provider

import (
	"context"

	"github.com/pcaldeira/contractdraft/constants"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/raster"
)

// ID identifies a concrete provider.
type ID string

const (
	TextProvider   ID = "TEXT_PROVIDER"
	VisionProvider ID = "VISION_PROVIDER"
)

// Request is constructed per provider attempt. Exactly one of Text, Pages
// or Image carries the document content, depending on the class.
type Request struct {
	Class classify.DocumentClass
	Role  constants.DocumentRole

	Text  string        // TEXT_PDF probe output
	Pages []raster.Page // rasterized IMAGE_PDF pages
	Image []byte        // native raster bytes
	// ImageExt is the native raster extension, for MIME detection.
	ImageExt string
}

// RawResult is one provider attempt's outcome. Payload keys are
// provider-defined; nothing past the normalizer may read them.
type RawResult struct {
	Provider ID
	Model    string
	Payload  map[string]any
}

// FieldCount reports how many non-empty values the payload carries, the
// signal the selector uses to detect near-empty extractions.
func (r RawResult) FieldCount() int {
	n := 0
	for _, v := range r.Payload {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		if v == nil {
			continue
		}
		n++
	}
	return n
}

// Extractor is a single network round trip to an external extraction API.
// It performs no retries; fallback is the selector's responsibility.
type Extractor interface {
	Extract(ctx context.Context, req Request) (RawResult, error)
}
