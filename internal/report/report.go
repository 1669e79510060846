// Package report defines the documents printed by the msreg command and
// encodes them as JSON, YAML or MessagePack.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// Float is a float64 that encodes non-finite values as null in JSON.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// Floats converts a slice.
func Floats(v []float64) []Float {
	if v == nil {
		return nil
	}
	out := make([]Float, len(v))
	for i, x := range v {
		out[i] = Float(x)
	}
	return out
}

// Model describes the fitted specification.
type Model struct {
	KRegimes          int      `json:"k_regimes"          yaml:"k_regimes"          msgpack:"k_regimes"`
	Trend             string   `json:"trend"              yaml:"trend"              msgpack:"trend"`
	SwitchingVariance bool     `json:"switching_variance" yaml:"switching_variance" msgpack:"switching_variance"`
	Regressors        []string `json:"regressors"         yaml:"regressors"         msgpack:"regressors"`
	NObs              int      `json:"nobs"               yaml:"nobs"               msgpack:"nobs"`
}

// Param is one named parameter estimate.
type Param struct {
	Name  string `json:"name"  yaml:"name"  msgpack:"name"`
	Value Float  `json:"value" yaml:"value" msgpack:"value"`
}

// Criteria holds information criteria.
type Criteria struct {
	AIC  Float `json:"aic"  yaml:"aic"  msgpack:"aic"`
	AICc Float `json:"aicc" yaml:"aicc" msgpack:"aicc"`
	BIC  Float `json:"bic"  yaml:"bic"  msgpack:"bic"`
	HQIC Float `json:"hqic" yaml:"hqic" msgpack:"hqic"`
}

// Diagnostics summarizes the smoothed residuals.
type Diagnostics struct {
	LjungBoxQ      Float  `json:"ljung_box_q"       yaml:"ljung_box_q"       msgpack:"ljung_box_q"`
	LjungBoxPValue Float  `json:"ljung_box_p_value" yaml:"ljung_box_p_value" msgpack:"ljung_box_p_value"`
	LjungBoxLags   int    `json:"ljung_box_lags"    yaml:"ljung_box_lags"    msgpack:"ljung_box_lags"`
	LjungBoxDOF    int    `json:"ljung_box_dof"     yaml:"ljung_box_dof"     msgpack:"ljung_box_dof"`
	DurbinWatson   Float  `json:"durbin_watson"     yaml:"durbin_watson"     msgpack:"durbin_watson"`
	Interpretation string `json:"interpretation"    yaml:"interpretation"    msgpack:"interpretation"`
}

// Fit is the report of an estimation.
type Fit struct {
	Source            string       `json:"source"                  yaml:"source"                  msgpack:"source"`
	Model             Model        `json:"model"                   yaml:"model"                   msgpack:"model"`
	Method            string       `json:"method"                  yaml:"method"                  msgpack:"method"`
	Converged         bool         `json:"converged"               yaml:"converged"               msgpack:"converged"`
	Iterations        int          `json:"iterations"              yaml:"iterations"              msgpack:"iterations"`
	LLF               Float        `json:"llf"                     yaml:"llf"                     msgpack:"llf"`
	Criteria          Criteria     `json:"criteria"                yaml:"criteria"                msgpack:"criteria"`
	Params            []Param      `json:"params"                  yaml:"params"                  msgpack:"params"`
	ExpectedDurations []Float      `json:"expected_durations"      yaml:"expected_durations"      msgpack:"expected_durations"`
	LLFHistory        []Float      `json:"llf_history,omitempty"   yaml:"llf_history,omitempty"   msgpack:"llf_history,omitempty"`
	Diagnostics       *Diagnostics `json:"diagnostics,omitempty"   yaml:"diagnostics,omitempty"   msgpack:"diagnostics,omitempty"`
	Smoothed          [][]Float    `json:"smoothed,omitempty"      yaml:"smoothed,omitempty"      msgpack:"smoothed,omitempty"`
}

// Loglike is the report of a single likelihood evaluation.
type Loglike struct {
	Source string  `json:"source" yaml:"source" msgpack:"source"`
	Model  Model   `json:"model"  yaml:"model"  msgpack:"model"`
	Params []Param `json:"params" yaml:"params" msgpack:"params"`
	LLF    Float   `json:"llf"    yaml:"llf"    msgpack:"llf"`
}

// Candidate summarizes one specification tried by the regime search.
type Candidate struct {
	KRegimes          int    `json:"k_regimes"          yaml:"k_regimes"          msgpack:"k_regimes"`
	SwitchingVariance bool   `json:"switching_variance" yaml:"switching_variance" msgpack:"switching_variance"`
	LLF               Float  `json:"llf"                yaml:"llf"                msgpack:"llf"`
	Criterion         Float  `json:"criterion"          yaml:"criterion"          msgpack:"criterion"`
	Error             string `json:"error,omitempty"    yaml:"error,omitempty"    msgpack:"error,omitempty"`
}

// Select is the report of a regime search.
type Select struct {
	Source     string      `json:"source"     yaml:"source"     msgpack:"source"`
	Criterion  string      `json:"criterion"  yaml:"criterion"  msgpack:"criterion"`
	Best       *Fit        `json:"best"       yaml:"best"       msgpack:"best"`
	Candidates []Candidate `json:"candidates" yaml:"candidates" msgpack:"candidates"`
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format string, v any) error {
	switch format {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
