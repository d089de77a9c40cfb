package source

import "errors"

var UnsupportedSourceError = errors.New("Failed to find a matching Data Source for query")
