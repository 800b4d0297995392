package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cast"
)

var stringSlice = reflect.TypeOf([]string{})

// argsHook lets list options be written as a single shell-quoted string,
// e.g. command_args = "-d --remove-orphans".
func argsHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != stringSlice {
			return data, nil
		}
		return shellquote.Split(cast.ToString(data))
	}
}

// scalarHook coerces quoted booleans and numbers.
func scalarHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		switch to.Kind() {
		case reflect.Bool:
			return cast.ToBoolE(data)
		case reflect.Int:
			return cast.ToIntE(data)
		}
		return data, nil
	}
}
