package bezier

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

type fixedPiece struct {
	length float64
	got    Graduation
}

func (p *fixedPiece) Length() float64 { return p.length }

func (p *fixedPiece) Graduate(thickness, start, end float64) {
	p.got = Graduation{thickness, start, end}
}

func graduations(pieces []*fixedPiece) []Graduation {
	return lo.Map(pieces, func(p *fixedPiece, _ int) Graduation { return p.got })
}

func asGraduaters(pieces []*fixedPiece) []Graduater {
	return lo.Map(pieces, func(p *fixedPiece, _ int) Graduater { return p })
}

func TestGraduate(t *testing.T) {
	pieces := []*fixedPiece{{length: 10}, {length: 30}, {length: 60}}
	Graduate(asGraduaters(pieces), 5, 0, 1)
	want := []Graduation{{5, 0, 0.1}, {5, 0.1, 0.4}, {5, 0.4, 1}}
	diff(t, want, graduations(pieces), cmpopts.EquateApprox(0, 1e-12))

	Graduate(asGraduaters(pieces), 3, 1, 0.5)
	want = []Graduation{{3, 1, 0.95}, {3, 0.95, 0.8}, {3, 0.8, 0.5}}
	diff(t, want, graduations(pieces), cmpopts.EquateApprox(0, 1e-12))
}

func TestGraduateCurves(t *testing.T) {
	a := NewBezier(Pt(0, 0), Pt(0, 25))
	b := NewBezier(Pt(0, 25), Pt(37.5, 25), Pt(75, 25))
	Graduate([]Graduater{a, b}, 4, 0, 1)
	diff(t, Graduation{4, 0, 0.25}, a.Graduation(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, Graduation{4, 0.25, 1}, b.Graduation(), cmpopts.EquateApprox(0, 1e-9))
	// The offset is continuous across pieces.
	assert.InDelta(t, a.Offset(1), b.Offset(0), 1e-9)
}

func TestGraduateNegativeLength(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	pieces := []*fixedPiece{{length: 50}, {length: -1}, {length: 50}}
	Graduate(asGraduaters(pieces), 1, 0, 1)
	want := []Graduation{{1, 0, 0.5}, {1, 0.5, 0.5}, {1, 0.5, 1}}
	diff(t, want, graduations(pieces), cmpopts.EquateApprox(0, 1e-12))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "negative length")
	assert.Contains(t, out, "piece=1")
}

func TestGraduateZeroLength(t *testing.T) {
	pieces := []*fixedPiece{{}, {}, {}, {}}
	Graduate(asGraduaters(pieces), 2, 0, 1)
	want := []Graduation{{2, 0, 0.25}, {2, 0.25, 0.5}, {2, 0.5, 0.75}, {2, 0.75, 1}}
	diff(t, want, graduations(pieces), cmpopts.EquateApprox(0, 1e-12))

	// Nothing to do, and nothing to divide by.
	Graduate(nil, 1, 0, 1)
}
