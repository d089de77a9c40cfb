package formats

import (
	"io"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
)

// Format parses a stops file and a legs file into the CTDF dataset
type Format interface {
	ParseStops(io.Reader) error
	ParseLegs(io.Reader) error
	ToCTDF() *ctdf.Dataset
}
