// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ask

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var (
	// ErrAborted is returned when the user cancels a prompt.
	ErrAborted = errors.New("aborted")
	// ErrNoInput is returned when input ends before a value was given.
	ErrNoInput = errors.New("no input")

	errEmpty = errors.New("a value is required")
)

// PromptError reports a prompt that did not produce a value.
type PromptError struct {
	Title string
	Err   error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Title, e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }

// Resolve returns *v when the flag was given and otherwise asks p for it.
func Resolve[T any](ctx context.Context, p Prompter, v *T, title string) (T, error) {
	if v != nil {
		return *v, nil
	}
	return Input[T](ctx, p, title)
}

// Input asks p for a value of type T, repeating the question until the
// answer is non-empty and decodes as T.
func Input[T any](ctx context.Context, p Prompter, title string) (T, error) {
	var zero T
	validate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errEmpty
		}
		_, err := Decode[T](s)
		return err
	}
	text, err := p.Prompt(ctx, title, validate)
	if err != nil {
		return zero, &PromptError{Title: title, Err: err}
	}
	if err := validate(text); err != nil {
		return zero, &PromptError{Title: title, Err: err}
	}
	v, _ := Decode[T](text)
	return v, nil
}

// Decode converts text to T. Surrounding whitespace is ignored. Numbers
// are read in base 10, durations use time.ParseDuration, types
// implementing encoding.TextUnmarshaler decode themselves, and slices
// take comma separated values.
func Decode[T any](text string) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			decimalHook,
		),
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(strings.TrimSpace(text)); err != nil {
		var zero T
		var ve *valueError
		if errors.As(err, &ve) {
			return zero, ve
		}
		return zero, err
	}
	return out, nil
}

// decimalHook parses numbers in base 10 with range checks. The weak
// decoding in mapstructure would accept 0x and 0 prefixes and wrap
// negative values into unsigned types.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	out := reflect.New(to).Elem()
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, to.Bits())
		if err != nil {
			return nil, numError(s, to, err)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, to.Bits())
		if err != nil {
			return nil, numError(s, to, err)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, to.Bits())
		if err != nil {
			return nil, numError(s, to, err)
		}
		out.SetFloat(n)
	default:
		return data, nil
	}
	return out.Interface(), nil
}

// valueError is a decode failure worth showing to the user without the
// decoder's field path.
type valueError struct {
	msg string
}

func (e *valueError) Error() string { return e.msg }

func numError(s string, t reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return &valueError{fmt.Sprintf("%q is out of range for %s", s, t)}
	}
	return &valueError{fmt.Sprintf("%q is not a valid %s", s, t)}
}
