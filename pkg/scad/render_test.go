package scad

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "primitive",
			node: square(10),
			want: "square(size = 10);",
		},
		{
			name: "modifier over primitive",
			node: Modify(translate2D(5, 5), square(10)),
			want: "translate([5, 5])\n  square(size = 10);",
		},
		{
			name: "modifier over block",
			node: Compose(difference3D, sphere(10), cube(15, true)),
			want: "difference() {\n  sphere(r = 10);\n  cube(size = 15, center = true);\n}",
		},
		{
			name: "comment on nested child",
			node: Compose(difference3D, sphere(10), cube(15, true).WithComment("This is a simple cube")),
			want: "difference() {\n  sphere(r = 10);\n  /* This is a simple cube */\n  cube(size = 15, center = true);\n}",
		},
		{
			name: "empty block",
			node: NewBlock(),
			want: "{\n}",
		},
		{
			name: "block",
			node: NewBlock(square(1), square(2)),
			want: "{\n  square(size = 1);\n  square(size = 2);\n}",
		},
		{
			name: "nested modifiers",
			node: Modify(color, Modify(extrude, Modify(translate2D(1, 2), square(1)))),
			want: "color(\"red\")\n  linear_extrude(height = 1)\n    translate([1, 2])\n      square(size = 1);",
		},
		{
			name: "commented root",
			node: square(1).WithComment("root"),
			want: "/* root */\nsquare(size = 1);",
		},
		{
			name: "commented modifier child",
			node: Modify(translate2D(0, 1), square(1).WithComment("moved")),
			want: "translate([0, 1])\n  /* moved */\n  square(size = 1);",
		},
		{
			name: "commented block under modifier",
			node: Modify(difference3D, NewBlock(sphere(1), cube(1, false)).WithComment("operands")),
			want: "difference() {\n  /* operands */\n  sphere(r = 1);\n  cube(size = 1);\n}",
		},
		{
			name: "comment terminator is not escaped",
			node: square(1).WithComment("a */ b"),
			want: "/* a */ b */\nsquare(size = 1);",
		},
		{
			name: "empty comment",
			node: square(1).WithComment(""),
			want: "square(size = 1);",
		},
		{
			name: "modifier over empty block",
			node: Modify(difference3D, NewBlock()),
			want: "difference() {\n}",
		},
		{
			name: "block in block",
			node: NewBlock(NewBlock(square(1))),
			want: "{\n  {\n    square(size = 1);\n  }\n}",
		},
		{
			name: "nil",
			node: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.node)
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
			if again := Render(tt.node); again != got {
				t.Errorf("second render differs:\n%s", again)
			}
		})
	}
}

func TestRenderIndent(t *testing.T) {
	got := RenderIndent(Modify(translate2D(1, 1), square(1).WithComment("c")), 2)
	want := "    translate([1, 1])\n      /* c */\n      square(size = 1);"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	build := func() *Node {
		return Compose(difference3D, sphere(10), Modify(color, cube(15, true)).WithComment("tinted"))
	}
	if a, b := Render(build()), Render(build()); a != b {
		t.Errorf("equal trees rendered differently:\n%s\n%s", a, b)
	}
}

func TestRenderSharedSubtree(t *testing.T) {
	shared := square(1)
	tree := NewBlock(Modify(translate2D(1, 0), shared), Modify(translate2D(2, 0), shared))
	if got := strings.Count(Render(tree), "square(size = 1);"); got != 2 {
		t.Errorf("shared subtree rendered %d times, want 2", got)
	}
}

func TestRenderNoTrailingNewline(t *testing.T) {
	for _, n := range []*Node{square(1), NewBlock(), Compose(difference3D, sphere(1), cube(1, false))} {
		if s := Render(n); strings.HasSuffix(s, "\n") {
			t.Errorf("%q ends with a newline", s)
		}
	}
}
