package geopkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteIdent(t *testing.T) {
	require.Equal(t, `"name"`, quoteIdent("name"))
	require.Equal(t, `"has""quote"`, quoteIdent(`has"quote`))
}

func TestColumnList_Empty(t *testing.T) {
	require.Equal(t, "", columnList(nil))
}

func TestColumnList_MultipleFields(t *testing.T) {
	fields := []Field{
		{Name: "label", Type: FieldText},
		{Name: "score", Type: FieldDouble},
	}
	require.Equal(t, `, "label" TEXT, "score" DOUBLE`, columnList(fields))
}
