//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"pytt/title"
)

func main() {
	c := make(chan struct{})

	js.Global().Set("pyttTitleize", js.FuncOf(titleize))
	js.Global().Set("pyttCapitalize", js.FuncOf(capitalize))
	js.Global().Set("pyttLowercase", js.FuncOf(lowercase))

	<-c
}

func titleize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pyttTitleize(text, [lowerWords])")
	}

	text := args[0].String()
	if len(args) > 1 {
		lower := make([]string, args[1].Length())
		for i := range lower {
			lower[i] = args[1].Index(i).String()
		}
		return makeResult(map[string]interface{}{
			"result": title.TitleizeWith(text, lower),
		})
	}

	return makeResult(map[string]interface{}{
		"result": title.Titleize(text),
	})
}

func capitalize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: pyttCapitalize(text)")
	}
	return makeResult(map[string]interface{}{
		"result": title.Capitalize(args[0].String()),
	})
}

func lowercase(this js.Value, args []js.Value) interface{} {
	return makeResult(map[string]interface{}{
		"words": title.DefaultLowercase(),
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
