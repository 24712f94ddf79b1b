package service

import (
	"reflect"
	"testing"
)

func TestSubmitResultEvents(t *testing.T) {
	tests := []struct {
		name      string
		completed bool
		want      []string
	}{
		{"mid-session batch", false, []string{"adaptive.batch_submitted"}},
		{"closing batch", true, []string{"adaptive.batch_submitted", "session.completed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &SubmitResult{Completed: tt.completed}
			if got := r.Events(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Events() = %v, want %v", got, tt.want)
			}
		})
	}
}
