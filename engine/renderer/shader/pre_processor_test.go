package shader

import (
	"strings"
	"testing"
)

func TestProcessIncludesOnce(t *testing.T) {
	p := NewPreProcessor()
	out, err := p.Process("//@oxy:include light\n//@oxy:include light\nfn main() {}")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "struct Light {"); n != 1 {
		t.Fatalf("Light struct injected %d times", n)
	}
	if !strings.HasSuffix(out, "fn main() {}") {
		t.Fatalf("plain lines should pass through: %q", out)
	}
}

func TestProcessGroupDeclaration(t *testing.T) {
	p := NewPreProcessor(WithStruct("draw", "struct DrawUniform { color: vec4<f32> };", "DrawUniform"))
	src := "//@oxy:include camera\n  // @oxy:group 0 0 uniform camera camera\n//@oxy:group 1 0 uniform per_draw draw"
	out, err := p.Process(src)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"@group(0) @binding(0) var<uniform> camera: CameraUniform;",
		"@group(1) @binding(0) var<uniform> per_draw: DrawUniform;",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}

	decls := p.Declarations()
	if len(decls) != 2 || decls[0].Line != 2 || decls[1].Group != 1 {
		t.Fatalf("declarations = %+v", decls)
	}
	if !HasBinding(decls, 1, 0) || HasBinding(decls, 0, 1) {
		t.Fatalf("HasBinding disagrees with %+v", decls)
	}
}

func TestProcessErrors(t *testing.T) {
	cases := map[string]string{
		"unknown type":    "//@oxy:bogus camera",
		"unknown include": "//@oxy:include nope",
		"bad arity":       "//@oxy:group 0 0 uniform camera",
		"bad group":       "//@oxy:group x 0 uniform camera camera",
		"bad space":       "//@oxy:group 0 0 private camera camera",
		"unknown struct":  "//@oxy:group 0 0 uniform camera nope",
		"empty":           "//@oxy:",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewPreProcessor().Process("fn a() {}\n" + src); err == nil || !strings.Contains(err.Error(), "line 2") {
				t.Fatalf("err = %v, want a line 2 error", err)
			}
		})
	}
}

func TestPlainCommentsUntouched(t *testing.T) {
	src := "// regular comment\n// oxy: not an annotation"
	out, err := NewPreProcessor().Process(src)
	if err != nil || out != src {
		t.Fatalf("out = %q err = %v", out, err)
	}
}
