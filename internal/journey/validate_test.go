package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jt/internal/parser"
)

const header = "journey_id,journey_name,step,user_does,system_shows,critical,owner,notes\n"

func parseRows(t *testing.T, table string) []parser.Row {
	t.Helper()
	parsed, err := parser.Parse([]byte(table))
	require.NoError(t, err)
	return parsed.Rows
}

func TestValidateRows_DecodesTypedRows(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login flow,1,enters email,inline validation,yes,growth,watch rate limits\n")
	typed, err := ValidateRows(rows)
	require.NoError(t, err)
	require.Len(t, typed, 1)
	r := typed[0]
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, "J-LOGIN", r.JourneyID)
	assert.Equal(t, "Login flow", r.JourneyName)
	assert.Equal(t, 1, r.Step)
	assert.Equal(t, "enters email", r.UserDoes)
	assert.Equal(t, "inline validation", r.SystemShows)
	assert.True(t, r.Critical)
	assert.Equal(t, "growth", r.Owner)
	assert.Equal(t, "watch rate limits", r.Notes)
}

func TestValidateRows_LowercaseIdentifierRejected(t *testing.T) {
	rows := parseRows(t, header+
		"signup-flow,Signup,1,a,b,yes,me,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "signup-flow")
}

func TestValidateRows_IdentifierNeedsTwoCharsAfterPrefix(t *testing.T) {
	rows := parseRows(t, header+
		"J-A,Short,1,a,b,yes,me,\n")
	_, err := ValidateRows(rows)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestValidateRows_HyphenatedIdentifierAccepted(t *testing.T) {
	rows := parseRows(t, header+
		"J-DEMO-FLOW,Demo,1,a,b,no,me,\n")
	typed, err := ValidateRows(rows)
	require.NoError(t, err)
	assert.Equal(t, "J-DEMO-FLOW", typed[0].JourneyID)
}

func TestValidateRows_MissingOwner(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,yes,,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrMissingOwner)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "J-LOGIN")
}

func TestValidateRows_CriticalityCaseInsensitive(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,YES,me,\n"+
		"J-LOGIN,Login,2,c,d,No,me,\n")
	typed, err := ValidateRows(rows)
	require.NoError(t, err)
	assert.True(t, typed[0].Critical)
	assert.False(t, typed[1].Critical)
}

func TestValidateRows_InvalidCriticality(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,maybe,me,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrInvalidCriticality)
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestValidateRows_StepMustBePositiveInteger(t *testing.T) {
	for _, bad := range []string{"0", "-1", "two", "1.5", ""} {
		rows := parseRows(t, header+
			"J-LOGIN,Login,"+bad+",a,b,yes,me,\n")
		_, err := ValidateRows(rows)
		assert.ErrorIs(t, err, ErrInvalidStep, "step=%q", bad)
	}
}

func TestValidateRows_DuplicateStepNamesBothLines(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,yes,me,\n"+
		"J-LOGIN,Login,1,c,d,yes,me,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrDuplicateStep)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "J-LOGIN")
}

func TestValidateRows_SameStepInDifferentJourneysAllowed(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,yes,me,\n"+
		"J-SIGNUP,Signup,1,c,d,no,me,\n")
	_, err := ValidateRows(rows)
	assert.NoError(t, err)
}

func TestValidateRows_GapInStepsReported(t *testing.T) {
	rows := parseRows(t, header+
		"J-CHECKOUT,Checkout,1,a,b,yes,me,\n"+
		"J-CHECKOUT,Checkout,3,c,d,yes,me,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrNonSequentialSteps)
	assert.Contains(t, err.Error(), "J-CHECKOUT")
	assert.Contains(t, err.Error(), "expected step 2")
	assert.Contains(t, err.Error(), "found step 3")
	assert.Contains(t, err.Error(), "line 3")
}

func TestValidateRows_StepsNotStartingAtOneReported(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,2,a,b,yes,me,\n")
	_, err := ValidateRows(rows)
	require.ErrorIs(t, err, ErrNonSequentialSteps)
	assert.Contains(t, err.Error(), "expected step 1")
}

func TestValidateRows_InterleavedJourneysSequenceIndependently(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,1,a,b,yes,me,\n"+
		"J-SIGNUP,Signup,1,c,d,no,me,\n"+
		"J-LOGIN,Login,2,e,f,yes,me,\n"+
		"J-SIGNUP,Signup,2,g,h,no,me,\n")
	typed, err := ValidateRows(rows)
	require.NoError(t, err)
	assert.Len(t, typed, 4)
}

func TestValidateRows_OutOfOrderStepsWithinJourneyAccepted(t *testing.T) {
	rows := parseRows(t, header+
		"J-LOGIN,Login,2,later,f,yes,me,\n"+
		"J-LOGIN,Login,1,first,b,yes,me,\n")
	_, err := ValidateRows(rows)
	assert.NoError(t, err)
}

func TestValidateRows_EmptyInputIsValid(t *testing.T) {
	typed, err := ValidateRows(nil)
	require.NoError(t, err)
	assert.Empty(t, typed)
}
