package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	require.InDelta(t, 22.86, BMI(175, 70), 0.01)
	require.Zero(t, BMI(0, 70))
	require.Zero(t, BMI(175, 0))
	require.Zero(t, BMI(-10, 70))
}

func TestBMICategory(t *testing.T) {
	require.Equal(t, "", BMICategory(0))
	require.Equal(t, "underweight", BMICategory(17.0))
	require.Equal(t, "normal", BMICategory(18.5))
	require.Equal(t, "normal", BMICategory(24.9))
	require.Equal(t, "overweight", BMICategory(25.0))
	require.Equal(t, "obese", BMICategory(30.0))
}
