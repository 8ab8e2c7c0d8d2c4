package qlog

import (
	"runtime/debug"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/sack-go/sack-go/logging"
)

// Setting of this only works when sack-go is used as a library.
// When building a binary from this repository, the version can be set using the following go build flag:
// -ldflags="-X github.com/sack-go/sack-go/qlog.sackGoVersion=foobar"
var sackGoVersion = "(devel)"

func init() {
	if sackGoVersion != "(devel)" { // variable set by ldflags
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok { // no build info available. This happens when sack-go is not used as a library.
		return
	}
	for _, d := range info.Deps {
		if d.Path == "github.com/sack-go/sack-go" {
			sackGoVersion = d.Version
			if d.Replace != nil && len(d.Replace.Version) == 0 {
				sackGoVersion += " (replaced)"
			}
			break
		}
	}
}

type topLevel struct {
	trace trace
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "NDJSON")
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKeyOmitEmpty("title", "sack-go qlog")
	enc.StringKey("code_version", sackGoVersion)
	enc.ObjectKey("trace", l.trace)
}

type vantagePoint struct {
	Name string
	Type logging.Perspective
}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	switch p.Type {
	case logging.PerspectiveSender:
		enc.StringKey("type", "sender")
	case logging.PerspectiveReceiver:
		enc.StringKey("type", "receiver")
	}
}

type commonFields struct {
	ConnID        string
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("group_id", f.ConnID)
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
}

var _ gojay.MarshalerJSONObject = trace{}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
}
