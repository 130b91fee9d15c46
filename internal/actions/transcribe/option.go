package transcribe

import "errors"

type options struct {
	inputFilePath  string
	outputFilePath string
}

type Option func(*options) error

func WithInputFilePath(inputFilePath string) Option {
	return func(o *options) error {
		if inputFilePath == "" {
			return errors.New("input file path must be 1 or more characters")
		}
		o.inputFilePath = inputFilePath
		return nil
	}
}

func WithOutputFilePath(outputFilePath string) Option {
	return func(o *options) error {
		if outputFilePath == "" {
			return errors.New("output file path must be 1 or more characters")
		}
		o.outputFilePath = outputFilePath
		return nil
	}
}
