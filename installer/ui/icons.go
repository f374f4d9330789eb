package ui

import (
	_ "embed"
)

//go:embed assets/kraken.png
var krakenLogoPng []byte
