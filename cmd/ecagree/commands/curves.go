package commands

import (
	"fmt"
	"strings"

	"github.com/go-i2p/ec"
)

var algorithms = []*ec.AgreementAlgorithm{
	ec.AgreementX25519,
	ec.AgreementECDHP256,
	ec.AgreementECDHP384,
}

// Aliases from the SEC 2 and X9.62 registries, on top of what
// ec.ParseCurveID understands.
var curveAliases = map[string]ec.CurveID{
	"secp256r1":  ec.P256,
	"prime256v1": ec.P256,
	"secp384r1":  ec.P384,
}

// lookupAlgorithm maps a curve name to its agreement algorithm. Names are
// case-insensitive.
func lookupAlgorithm(name string) (*ec.AgreementAlgorithm, error) {
	id, err := ec.ParseCurveID(name)
	if err != nil {
		var ok bool
		if id, ok = curveAliases[strings.ToLower(strings.TrimSpace(name))]; !ok {
			return nil, fmt.Errorf("unknown curve %q", name)
		}
	}
	for _, alg := range algorithms {
		if alg.Curve().ID() == id {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("no agreement algorithm for %s", id)
}
