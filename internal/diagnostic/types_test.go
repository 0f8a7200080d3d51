package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("unmapped_superclass", "superclass is not in the table", "a.C", "")
	d.AddWarning("unnamed_class", "class has no name in dst", "a.D", "")
	assert.False(t, d.HasErrors())

	d.AddError("duplicate_field", "field \"f\" is declared twice", "a.B", "f")
	d.AddError("missing_name", "entry has no name", "", "")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		"[a.B] f: [duplicate_field] field \"f\" is declared twice; [missing_name] entry has no name")

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)

	var other Diagnostics
	other.AddWarning("w", "another", "", "")
	d.Merge(other)
	assert.Len(t, d.Warnings, 2)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}

func TestNamespacedDiagnostics(t *testing.T) {
	var d Diagnostics

	d.Add(Diagnostic{Severity: DiagnosticError, Code: "duplicate_class", Message: "class name \"x\" is used twice", Class: "x", Namespace: "dst"})
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: "unnamed_class", Message: "no name", Class: "a.C", Namespace: "dst"})
	d.AddInfo("unmapped_superclass", "superclass is not in the table", "a.C", "")

	require.Len(t, d.Errors, 1)
	require.Len(t, d.Warnings, 1)
	require.Len(t, d.Infos, 1)

	assert.EqualError(t, d.Error(), `[x] (dst): [duplicate_class] class name "x" is used twice`)
	assert.Len(t, d.InNamespace("dst"), 2)
	assert.Empty(t, d.InNamespace("src"))
}
