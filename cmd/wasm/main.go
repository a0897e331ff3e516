//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-keyutil/pkg/ecpair"
	"github.com/smallyu/go-keyutil/pkg/keyutil"
)

// Global map of decoded key pairs
// Key: handle returned by FromBuffer
var keyPairs = make(map[string]*ecpair.KeyPair)

var nextHandle int

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go KeyUtil WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoKeyUtil", map[string]interface{}{
		"FromBuffer": js.FuncOf(FromBuffer),
		"ToBuffer":   js.FuncOf(ToBuffer),
		"Generate":   js.FuncOf(Generate),
		"Release":    js.FuncOf(Release),
	})

	<-c
}

// FromBuffer decodes a private key buffer.
// Arguments:
// 0: Uint8Array of 32 bytes
// 1: curve name (optional, default "secp256k1")
// Returns:
// JSON string { handle, curve, publicKey } or "error: ..."
func FromBuffer(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || len(args) > 2 {
		return "error: expected 1 or 2 arguments (buffer, curve)"
	}

	opts, err := curveOptions(args[1:])
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	kp, err := keyutil.PrivateKeyValueToECPair(goValue(args[0]), opts...)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return store(kp)
}

// ToBuffer encodes the key pair behind a handle.
// Arguments:
// 0: handle (string)
// Returns:
// Uint8Array of 32 bytes or "error: ..."
func ToBuffer(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (handle)"
	}
	kp, ok := keyPairs[args[0].String()]
	if !ok {
		return "error: key pair not found"
	}

	buf, err := keyutil.PrivateKeyBufferFromECPair(kp)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	out := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(out, buf)
	return out
}

// Generate creates a random key pair.
// Arguments:
// 0: curve name (optional)
// Returns:
// JSON string { handle, curve, publicKey } or "error: ..."
func Generate(this js.Value, args []js.Value) interface{} {
	if len(args) > 1 {
		return "error: expected at most 1 argument (curve)"
	}
	opts, err := curveOptions(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	kp, err := ecpair.Generate(opts...)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return store(kp)
}

// Release drops the key pair behind a handle.
func Release(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (handle)"
	}
	delete(keyPairs, args[0].String())
	return nil
}

// Helpers

// goValue maps a JS value to the Go value the decoder type-checks.
// Only Uint8Array becomes []byte; strings stay strings.
func goValue(v js.Value) interface{} {
	if v.InstanceOf(js.Global().Get("Uint8Array")) {
		b := make([]byte, v.Get("length").Int())
		js.CopyBytesToGo(b, v)
		return b
	}
	switch v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return v.Float()
	}
	return nil
}

func curveOptions(args []js.Value) ([]ecpair.Option, error) {
	if len(args) == 0 || args[0].IsUndefined() || args[0].IsNull() {
		return nil, nil
	}
	if args[0].Type() != js.TypeString {
		return nil, fmt.Errorf("curve must be a string")
	}
	return []ecpair.Option{ecpair.WithCurve(args[0].String())}, nil
}

func store(kp *ecpair.KeyPair) string {
	nextHandle++
	handle := fmt.Sprintf("kp-%d", nextHandle)
	keyPairs[handle] = kp

	resp := map[string]interface{}{
		"handle":    handle,
		"curve":     kp.CurveName(),
		"publicKey": hex.EncodeToString(kp.PublicKey()),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}
