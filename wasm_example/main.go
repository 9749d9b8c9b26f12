//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/braheezy/fixed-pi/pkg/fixed"
)

func multiplyByPi(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeNumber {
		return js.ValueOf(map[string]interface{}{
			"error": "multiplyByPi expects a number",
		})
	}

	// JavaScript numbers are float64; narrow to the fixed-point width
	number := int32(args[0].Int())

	return js.ValueOf(int(fixed.MultiplyByPi(number)))
}

func main() {
	c := make(chan struct{})
	js.Global().Set("multiplyByPi", js.FuncOf(multiplyByPi))
	<-c
}
