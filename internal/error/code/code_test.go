package code

import "testing"

func TestEveryCodeHasMessageAndStatus(t *testing.T) {
	for c := range codeStatusMap {
		if _, ok := codeMessageMap[c]; !ok {
			t.Errorf("code %d has a status but no message", c)
		}
	}
	for c := range codeMessageMap {
		if _, ok := codeStatusMap[c]; !ok {
			t.Errorf("code %d has a message but no status", c)
		}
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{ErrResidentFieldsMissing, StatusBadRequest},
		{ErrResidentAlreadyExist, StatusConflict},
		{ErrResidentNotFound, StatusNotFound},
		{ErrQRTokenExpired, StatusUnauthorized},
		{ErrInvalidCredentials, StatusUnauthorized},
		{ErrRoleMismatch, StatusForbidden},
		{999999, StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := GetStatus(tt.code); got != tt.want {
			t.Errorf("GetStatus(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
	if GetMessage(999999) != "Internal server error" {
		t.Error("unknown codes should fall back to the generic message")
	}
}
