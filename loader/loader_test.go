package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/contactnet/contact"
	"github.com/katalvlaran/contactnet/loader"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContactFiles(t *testing.T) {
	events, err := loader.ReadContactFiles([]string{"testdata/within.csv", "testdata/across.csv"})
	require.NoError(t, err)
	require.Len(t, events, 5)

	first := events[0]
	assert.Equal(t, "E_1", first.A.ID)
	assert.Equal(t, "E", first.A.Household)
	require.NotNil(t, first.A.Age)
	assert.Equal(t, 34, *first.A.Age)
	assert.Equal(t, "F", first.A.Sex)
	assert.Equal(t, "E_2", first.B.ID)
	assert.Equal(t, "120", first.Duration.String())
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, 8, first.Hour)

	// "61.0" is an integral age; an empty age is unknown.
	assert.Equal(t, 61, *events[2].A.Age)
	assert.Nil(t, events[2].B.Age)

	// across-household rows follow within-household rows
	assert.Equal(t, "F_1", events[3].B.ID)
	assert.True(t, events[4].Duration.IsZero())
}

func TestReadContacts_FeedsAggregate(t *testing.T) {
	events, err := loader.ReadContactFiles([]string{"testdata/within.csv", "testdata/across.csv"})
	require.NoError(t, err)

	agg, err := contact.Aggregate(events)
	require.NoError(t, err)
	w := agg.Weights()
	assert.True(t, w[contact.Canonicalize("E_1", "E_2")].Equal(decimal.NewFromInt(160)))
	assert.True(t, w[contact.Canonicalize("E_2", "G_1")].IsZero())
	assert.Len(t, agg.Nodes, 5)

	// FirstSeen keeps E_1's age from the first within-household row.
	for _, n := range agg.Nodes {
		if n.ID == "E_1" {
			assert.Equal(t, 34, *n.Attrs.Age)
		}
	}
}

func TestReadContacts_HeaderVariants(t *testing.T) {
	in := "\ufeffDAY;Hour;h2;m2;h1;m1;duration;note\n2;10;B;1;A;7;12.5;x\n"
	events, err := loader.ReadContacts(strings.NewReader(in), "semi.csv", loader.WithComma(';'))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "A_7", events[0].A.ID)
	assert.Equal(t, "B_1", events[0].B.ID)
	assert.Equal(t, "12.5", events[0].Duration.String())
	assert.Nil(t, events[0].A.Age)
	assert.Equal(t, 2, events[0].Day)
}

func TestReadContacts_Empty(t *testing.T) {
	events, err := loader.ReadContacts(strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = loader.ReadContacts(strings.NewReader("h1,m1,h2,m2,duration,day,hour\n"), "header.csv")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReadContacts_Errors(t *testing.T) {
	const hdr = "h1,m1,h2,m2,duration,day,hour,age1\n"
	cases := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"missing column", "h1,m1,h2,m2,duration,day\nA,1,B,1,3,1\n", loader.ErrMissingColumn, ""},
		{"non-numeric duration", hdr + "A,1,B,1,3,1,1,\nA,1,B,1,abc,1,1,\n", loader.ErrMalformedRecord, "x.csv:3"},
		{"negative duration", hdr + "A,1,B,1,-3,1,1,\n", loader.ErrMalformedRecord, "x.csv:2"},
		{"fractional day", hdr + "A,1,B,1,3,1.5,1,\n", loader.ErrMalformedRecord, "x.csv:2"},
		{"bad hour", hdr + "A,1,B,1,3,1,noon,\n", loader.ErrMalformedRecord, "x.csv:2"},
		{"bad age", hdr + "A,1,B,1,3,1,1,old\n", loader.ErrMalformedRecord, "x.csv:2"},
		{"empty member", hdr + "A,,B,1,3,1,1,\n", loader.ErrMalformedRecord, "x.csv:2"},
		{"field count", hdr + "A,1,B,1,3\n", loader.ErrMalformedRecord, "x.csv"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.ReadContacts(strings.NewReader(tc.in), "x.csv")
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "x.csv")
			if tc.line != "" {
				assert.Contains(t, err.Error(), tc.line)
			}
		})
	}
}

func TestReadContactFiles_Errors(t *testing.T) {
	_, err := loader.ReadContactFiles(nil)
	assert.ErrorIs(t, err, loader.ErrNoInput)

	_, err = loader.ReadContactFiles([]string{filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadGEXFFile(t *testing.T) {
	agg, err := loader.ReadGEXFFile("testdata/school.gexf")
	require.NoError(t, err)

	ids := make([]string, 0, len(agg.Nodes))
	for _, n := range agg.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"1558", "1560", "1567", "1600"}, ids)
	assert.Equal(t, "1B", agg.Nodes[0].Attrs.Class)
	assert.Equal(t, "M", agg.Nodes[0].Attrs.Sex)
	assert.Equal(t, "Teachers", agg.Nodes[1].Attrs.Class)

	require.Len(t, agg.Edges, 2)
	w := agg.Weights()
	assert.True(t, w[contact.Canonicalize("1558", "1567")].Equal(decimal.NewFromInt(180)), "parallel GEXF edges are summed")
	assert.True(t, w[contact.Canonicalize("1558", "1560")].Equal(decimal.NewFromInt(20)))
}

func TestReadGEXF_WeightAttribute(t *testing.T) {
	agg, err := loader.ReadGEXFFile("testdata/school.gexf", loader.WithWeightAttribute("Duration"))
	require.NoError(t, err)
	w := agg.Weights()
	assert.True(t, w[contact.Canonicalize("1558", "1567")].Equal(decimal.NewFromInt(62)))
}

func TestReadGEXF_Defaults(t *testing.T) {
	in := `<gexf><graph><nodes><node id="a"/><node id="b"/></nodes>
<edges><edge source="a" target="b"/></edges></graph></gexf>`
	agg, err := loader.ReadGEXF(strings.NewReader(in), "min.gexf")
	require.NoError(t, err)
	require.Len(t, agg.Edges, 1)
	assert.True(t, agg.Edges[0].TotalDuration.Equal(decimal.NewFromInt(1)))
}

func TestReadGEXF_Errors(t *testing.T) {
	cases := map[string]string{
		"not xml":      `<gexf><graph>`,
		"empty id":     `<gexf><graph><nodes><node id=""/></nodes></graph></gexf>`,
		"bad weight":   `<gexf><graph><edges><edge source="a" target="b" weight="heavy"/></edges></graph></gexf>`,
		"empty source": `<gexf><graph><edges><edge source="" target="b"/></edges></graph></gexf>`,
		"bad age": `<gexf><graph><attributes class="node"><attribute id="0" title="age"/></attributes>
<nodes><node id="a"><attvalues><attvalue for="0" value="x"/></attvalues></node></nodes></graph></gexf>`,
	}
	for name, in := range cases {
		_, err := loader.ReadGEXF(strings.NewReader(in), "bad.gexf")
		assert.ErrorIs(t, err, loader.ErrMalformedGraph, name)
	}

	_, err := loader.ReadGEXF(strings.NewReader(
		`<gexf><graph><edges><edge source="a" target="a"/></edges></graph></gexf>`), "loop.gexf")
	assert.ErrorIs(t, err, loader.ErrMalformedGraph)
	assert.ErrorIs(t, err, contact.ErrSelfPair)
}
