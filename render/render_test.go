package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcolor/coloring"
	"github.com/katalvlaran/gridcolor/gridgraph"
	"github.com/katalvlaran/gridcolor/render"
)

// fixture is
//
//	1 1 2
//	2 3 1
func fixture(t *testing.T) *coloring.Coloring {
	t.Helper()
	gg, err := gridgraph.New(2, 3)
	require.NoError(t, err)
	c, err := coloring.FromColors(gg, []int{1, 1, 2, 2, 3, 1})
	require.NoError(t, err)

	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    interface{}
		wantErr error
	}{
		{name: "text", want: &render.Text{}},
		{name: "", want: &render.Text{}},
		{name: " Mermaid ", want: &render.Mermaid{}},
		{name: "none", want: render.None{}},
		{name: "svg", wantErr: render.ErrUnknownRenderer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := render.New(tt.name, render.WithProfile(termenv.Ascii))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestText_Plain(t *testing.T) {
	r, err := render.New(render.NameText, render.WithProfile(termenv.Ascii))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, fixture(t), "Random Color Distribution"))
	assert.Equal(t, "Random Color Distribution\n1 1 2\n2 3 1\n", buf.String())
}

func TestText_ConflictMarks(t *testing.T) {
	r := &render.Text{Profile: termenv.Ascii, MarkConflicts: true}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, fixture(t), "T"))
	assert.Equal(t, "T\n1* 1* 2\n2  3  1\n", buf.String())
}

func TestText_WideColors(t *testing.T) {
	gg, err := gridgraph.New(1, 3)
	require.NoError(t, err)
	c, err := coloring.FromColors(gg, []int{12, 3, 7})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&render.Text{Profile: termenv.Ascii}).Render(&buf, c, "W"))
	assert.Equal(t, "W\n12  3  7\n", buf.String())
}

func TestText_EscapesWithColorProfile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.Text{Profile: termenv.TrueColor}).Render(&buf, fixture(t), "T"))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestMermaid(t *testing.T) {
	var buf bytes.Buffer
	r := &render.Mermaid{MarkConflicts: true}
	require.NoError(t, r.Render(&buf, fixture(t), "Clustered Color Distribution"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "---\ntitle: Clustered Color Distribution\n---\ngraph LR\n"), out)
	for _, want := range []string{
		`n0_0["1"]`,
		`n1_1["3"]`,
		"n0_0 --- n0_1",
		"n0_1 --- n1_1",
		"classDef c1 fill:#ef4444,color:#000;",
		"class n0_0,n0_1,n1_2 c1;",
		"class n1_1 c3;",
		"class n0_0,n0_1 conflict;",
	} {
		assert.Contains(t, out, want)
	}
	// 7 edges in a 2×3 grid
	assert.Equal(t, 7, strings.Count(out, " --- "))
	// node declarations follow row-major order
	assert.Less(t, strings.Index(out, `n0_2["2"]`), strings.Index(out, `n1_0["2"]`))
}

func TestMermaid_NoTitleNoMarks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.Mermaid{}).Render(&buf, fixture(t), ""))
	assert.True(t, strings.HasPrefix(buf.String(), "graph LR\n"))
	assert.NotContains(t, buf.String(), "conflict")
}

func TestRender_NilColoring(t *testing.T) {
	for _, r := range []render.Renderer{&render.Text{Profile: termenv.Ascii}, &render.Mermaid{}} {
		err := r.Render(&bytes.Buffer{}, nil, "x")
		assert.True(t, errors.Is(err, coloring.ErrNilColoring))
	}
	assert.NoError(t, render.None{}.Render(nil, nil, ""))
}
