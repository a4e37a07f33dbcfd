package metrics

import (
	"math"
	"testing"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		data      []float32
		curve     []float32
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect fit",
			data:      []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			curve:     []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "simple case",
			data:      []float32{1.0, 2.0, 3.0, 4.0},
			curve:     []float32{1.5, 2.5, 2.5, 3.5},
			want:      0.25, // ((0.5)^2 + (0.5)^2 + (-0.5)^2 + (-0.5)^2) / 4 = 1.0/4 = 0.25
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name:      "dimension mismatch",
			data:      []float32{1.0, 2.0, 3.0},
			curve:     []float32{1.0, 2.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
		{
			name:      "empty data",
			data:      nil,
			curve:     nil,
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.data, tt.curve)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
				}
			}
		})
	}
}

func TestMAE(t *testing.T) {
	tests := []struct {
		name      string
		data      []float32
		curve     []float32
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect fit",
			data:      []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			curve:     []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "simple case",
			data:      []float32{1.0, 2.0, 3.0, 4.0},
			curve:     []float32{1.5, 2.5, 2.5, 3.5},
			want:      0.5,
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name:      "with negative differences",
			data:      []float32{1.0, 2.0, 3.0, 4.0},
			curve:     []float32{2.0, 1.0, 4.0, 3.0},
			want:      1.0,
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name:      "dimension mismatch",
			data:      []float32{1.0, 2.0, 3.0},
			curve:     []float32{1.0, 2.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.data, tt.curve)

			if (err != nil) != tt.wantErr {
				t.Errorf("MAE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MAE() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMAPE(t *testing.T) {
	tests := []struct {
		name      string
		data      []float32
		curve     []float32
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect fit",
			data:      []float32{1.0, 2.0, 4.0},
			curve:     []float32{1.0, 2.0, 4.0},
			want:      0.0,
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name:      "simple case",
			data:      []float32{10.0, 20.0},
			curve:     []float32{11.0, 18.0},
			want:      10.0, // (0.1 + 0.1) / 2 * 100 = 10
			tolerance: 1e-6,
			wantErr:   false,
		},
		{
			name:      "all zero data",
			data:      []float32{0.0, 0.0},
			curve:     []float32{1.0, 1.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
		{
			name:      "dimension mismatch",
			data:      []float32{1.0, 2.0, 3.0},
			curve:     []float32{1.0, 2.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAPE(tt.data, tt.curve)

			if (err != nil) != tt.wantErr {
				t.Errorf("MAPE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("MAPE() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestExplainedVarianceScore(t *testing.T) {
	tests := []struct {
		name      string
		data      []float32
		curve     []float32
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect fit",
			data:      []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			curve:     []float32{1.0, 2.0, 3.0, 4.0, 5.0},
			want:      1.0,
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:      "no variance in data",
			data:      []float32{3.0, 3.0, 3.0, 3.0, 3.0},
			curve:     []float32{2.0, 3.0, 4.0, 3.0, 3.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
		{
			name:      "dimension mismatch",
			data:      []float32{1.0, 2.0, 3.0},
			curve:     []float32{1.0, 2.0},
			want:      0.0,
			tolerance: 1e-10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExplainedVarianceScore(tt.data, tt.curve)

			if (err != nil) != tt.wantErr {
				t.Errorf("ExplainedVarianceScore() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("ExplainedVarianceScore() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func BenchmarkMSE(b *testing.B) {
	size := 10000
	data := make([]float32, size)
	curve := make([]float32, size)
	for i := 0; i < size; i++ {
		data[i] = float32(i)
		curve[i] = float32(i) + 0.1*float32(i%10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MSE(data, curve)
	}
}
