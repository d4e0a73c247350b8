package agentx

import "github.com/imdario/mergo"

// CodecOptions controls strictness knobs on the decode side of the wire
// codec. Encoders have no equivalent knobs: they always emit the
// canonical zero-filled reserved bytes the wire format requires.
type CodecOptions struct {
	// StrictReserved rejects PDUs whose reserved bytes are non-zero,
	// instead of the spec's default "decoders MAY accept" behaviour.
	StrictReserved bool
}

// DefaultCodecOptions is merged in behind any CodecOption overrides a
// caller supplies.
var DefaultCodecOptions = CodecOptions{
	StrictReserved: false,
}

// CodecOption configures decoding behaviour.
type CodecOption func(*CodecOptions)

// WithStrictReserved enables or disables rejection of non-zero reserved
// bytes. Default is disabled.
func WithStrictReserved(strict bool) CodecOption {
	return func(o *CodecOptions) {
		o.StrictReserved = strict
	}
}

func resolveOptions(opts []CodecOption) CodecOptions {
	cfg := CodecOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	mergo.Merge(&cfg, DefaultCodecOptions) // nolint: errcheck

	return cfg
}
