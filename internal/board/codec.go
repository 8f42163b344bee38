package board

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"plinkotone/internal/physics"
)

// ErrInvalidCode is returned for share codes that cannot be decoded.
var ErrInvalidCode = errors.New("invalid board code")

// DefaultScale is assumed when a share code does not carry one.
const DefaultScale = "pentatonic"

// Shared is a decoded share code.
type Shared struct {
	Pegs  []Descriptor
	Scale string
}

type wireBoard struct {
	P [][3]int `json:"p"`
	S string   `json:"s,omitempty"`
}

var wireKinds = [...]physics.PegKind{physics.PegTone, physics.PegBounce, physics.PegSplit}

// Encode packs a layout and scale name into a URL-safe share code.
// Coordinates are quantized to thousandths.
func Encode(descs []Descriptor, scale string) string {
	w := wireBoard{P: make([][3]int, len(descs)), S: scale}
	for i, d := range descs {
		w.P[i] = [3]int{
			int(math.Round(d.NX * 1000)),
			int(math.Round(d.NY * 1000)),
			wireKind(d.Kind),
		}
	}
	raw, _ := json.Marshal(w)
	return base64.URLEncoding.EncodeToString(raw)
}

// Decode reverses Encode. Both URL-safe and standard base64 are accepted.
func Decode(code string) (Shared, error) {
	raw, err := base64.URLEncoding.DecodeString(code)
	if err != nil {
		raw, err = base64.StdEncoding.DecodeString(code)
	}
	if err != nil {
		return Shared{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	var w wireBoard
	if err := json.Unmarshal(raw, &w); err != nil {
		return Shared{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if w.P == nil {
		return Shared{}, fmt.Errorf("%w: missing pegs", ErrInvalidCode)
	}

	out := Shared{Pegs: make([]Descriptor, len(w.P)), Scale: w.S}
	if out.Scale == "" {
		out.Scale = DefaultScale
	}
	for i, p := range w.P {
		kind := physics.PegTone
		if p[2] >= 0 && p[2] < len(wireKinds) {
			kind = wireKinds[p[2]]
		}
		out.Pegs[i] = Descriptor{NX: float64(p[0]) / 1000, NY: float64(p[1]) / 1000, Kind: kind}
	}
	return out, nil
}

func wireKind(k physics.PegKind) int {
	for i, wk := range wireKinds {
		if wk == k {
			return i
		}
	}
	return 0
}
