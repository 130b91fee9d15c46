package transcribe

import (
	"testing"
)

func TestWithInputFilePath(t *testing.T) {
	type args struct {
		inputFilePath string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				inputFilePath: "test-input-file-path",
			},
			want: "test-input-file-path",
		},
		{
			name: "empty input file path",
			args: args{
				inputFilePath: "",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			got := WithInputFilePath(tt.args.inputFilePath)
			if err := got(opts); (err != nil) != tt.wantErr {
				t.Errorf("WithInputFilePath()() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := opts.inputFilePath; got != tt.want {
				t.Errorf("WithInputFilePath()() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithOutputFilePath(t *testing.T) {
	type args struct {
		outputFilePath string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				outputFilePath: "test-output-file-path",
			},
			want: "test-output-file-path",
		},
		{
			name: "empty output file path",
			args: args{
				outputFilePath: "",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options{}
			got := WithOutputFilePath(tt.args.outputFilePath)
			if err := got(opts); (err != nil) != tt.wantErr {
				t.Errorf("WithOutputFilePath()() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := opts.outputFilePath; got != tt.want {
				t.Errorf("WithOutputFilePath()() = %v, want %v", got, tt.want)
			}
		})
	}
}
