package legal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/K-dessa/VHM-api-sub000/internal/domain/legal"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

func TestClassifyCaseType_CriminalKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, analysis.CaseCriminal, legal.ClassifyCaseType("Strafrecht zaak tegen verdachte"))
	assert.Equal(t, analysis.CaseCriminal, legal.ClassifyCaseType("De verdachte is veroordeeld"))
}

func TestClassifyCaseType_CriminalOutranksAdministrative(t *testing.T) {
	t.Parallel()

	// Both families of keywords present; the criminal rule is evaluated first.
	assert.Equal(t, analysis.CaseCriminal,
		legal.ClassifyCaseType("bestuursrecht zaak waarin de verdachte de gemeente aanklaagt"))
}

func TestClassifyCaseType_Administrative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, analysis.CaseAdministrative, legal.ClassifyCaseType("Beroep tegen besluit van de gemeente"))
	assert.Equal(t, analysis.CaseAdministrative, legal.ClassifyCaseType("Ministerie van Financiën"))
}

func TestClassifyCaseType_DefaultsToCivil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, analysis.CaseCivil, legal.ClassifyCaseType("Geschil over huurovereenkomst"))
	assert.Equal(t, analysis.CaseCivil, legal.ClassifyCaseType(""))
}

func TestNormalizeCaseType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, analysis.CaseCivil, legal.NormalizeCaseType("Civil"))
	assert.Equal(t, analysis.CaseCriminal, legal.NormalizeCaseType(" straf "))
	assert.Equal(t, analysis.CaseAdministrative, legal.NormalizeCaseType("bestuursrecht"))
	// Unrecognised values fall through to keyword classification.
	assert.Equal(t, analysis.CaseCriminal, legal.NormalizeCaseType("uitspraak strafrecht"))
	assert.Equal(t, analysis.CaseCivil, legal.NormalizeCaseType("onbekend"))
}

func TestExtractParties_FindsDutchEntities(t *testing.T) {
	t.Parallel()

	text := "In de zaak tussen Jansen B.V. en Stichting Welzijn werd Pietersen N.V. genoemd."
	parties := legal.ExtractParties(text)

	assert.Contains(t, parties, "Jansen B.V.")
	assert.Contains(t, parties, "Pietersen N.V.")
}

func TestExtractParties_DeduplicatesAndCaps(t *testing.T) {
	t.Parallel()

	text := "Jansen B.V. tegen Jansen B.V. inzake Jansen B.V."
	parties := legal.ExtractParties(text)
	count := 0
	for _, p := range parties {
		if p == "Jansen B.V." {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.LessOrEqual(t, len(parties), 10)
}

func TestExtractParties_EmptyText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, legal.ExtractParties(""))
}

//Personal.AI order the ending
