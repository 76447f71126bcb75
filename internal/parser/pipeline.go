package parser

// Observer receives per-stage outcomes. Implementations must be safe for
// concurrent use when the pipeline is shared.
type Observer interface {
	ObserveStage(stage int, matched bool)
}

type noopObserver struct{}

func (noopObserver) ObserveStage(int, bool) {}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver reports stage outcomes to o.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithExtension replaces the pass-through fourth stage.
func WithExtension(e Enricher) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.extension = e
		}
	}
}

// WithAmountPatterns replaces the extractor pattern table.
func WithAmountPatterns(patterns []AmountPattern) Option {
	return func(p *Pipeline) {
		p.extractor = NewAmountExtractor(patterns)
	}
}

// Pipeline sequences the parsing stages. It holds no mutable state.
type Pipeline struct {
	taxonomy   *Taxonomy
	normalizer *Normalizer
	numeric    AmountRecognizer
	extractor  AmountRecognizer
	classifier Enricher
	extension  Enricher
	observer   Observer
}

// NewPipeline wires the default stages around taxonomy.
func NewPipeline(taxonomy *Taxonomy, opts ...Option) *Pipeline {
	p := &Pipeline{
		taxonomy:   taxonomy,
		normalizer: NewNormalizer(taxonomy.Slang()),
		numeric:    NumericRecognizer{},
		extractor:  NewAmountExtractor(DefaultAmountPatterns()),
		classifier: NewCategoryClassifier(taxonomy),
		extension:  PassThroughStage{},
		observer:   noopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Taxonomy returns the taxonomy the classifier scores against.
func (p *Pipeline) Taxonomy() *Taxonomy {
	return p.taxonomy
}

// Normalize exposes the slang normalizer used before amount recognition.
func (p *Pipeline) Normalize(text string) string {
	return p.normalizer.Normalize(text)
}

// Process parses one message. It returns nil when no amount could be
// isolated. A bare amount is returned as Stage 1 produced it; anything with
// a description goes through classification and the extension stage.
func (p *Pipeline) Process(text string) *ParsedTransaction {
	normalized := p.normalizer.Normalize(text)

	candidate, ok := p.numeric.Recognize(normalized)
	p.observer.ObserveStage(StageNumeric, ok)
	if !ok {
		candidate, ok = p.extractor.Recognize(normalized)
		p.observer.ObserveStage(StageExtractor, ok)
		if !ok {
			return nil
		}
	}

	// "500" must come back as {500, no description, no category, stage 1, 1.0}
	if !candidate.HasDescription() {
		return &candidate
	}

	candidate = p.classifier.Enrich(candidate)
	p.observer.ObserveStage(StageClassifier, !candidate.Category.CatchAll)

	p.observer.ObserveStage(StageExtension, true)
	return ApplyEnricher(p.extension, &candidate)
}

// ApplyEnricher runs e on a copy of tx. A nil transaction passes through as nil.
func ApplyEnricher(e Enricher, tx *ParsedTransaction) *ParsedTransaction {
	if tx == nil {
		return nil
	}
	out := e.Enrich(*tx)
	return &out
}
