//go:build whisper_cpp

package whisper

/*
#include <stdbool.h>
#include <whisper.h>
*/
import "C"

import (
	"unsafe"

	whispercpp "github.com/ggerganov/whisper.cpp/bindings/go"
)

// applyNativeParams sets the fields the Go binding has no setters for.
func applyNativeParams(dst *whispercpp.Params, p Params) {
	native := (*C.struct_whisper_full_params)(unsafe.Pointer(dst))
	native.beam_search.patience = C.float(p.Patience)
	native.suppress_blank = C.bool(p.SuppressBlank)
	native.suppress_nst = C.bool(p.SuppressNonSpeech)
}
