package scad_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/scadgen/pkg/scad"
	"github.com/matzehuels/scadgen/pkg/shape"
	"github.com/matzehuels/scadgen/pkg/value"
)

func ExampleRender() {
	sphere := shape.NewSphere().R(10).MustBuild().Node()
	cube := shape.NewCube().Size(15).Center(true).MustBuild().Node()

	diff := scad.Compose(shape.Difference[scad.Solid](), sphere, cube.WithComment("This is a simple cube"))
	fmt.Println(scad.Render(diff))
	// Output:
	// difference() {
	//   sphere(r = 10);
	//   /* This is a simple cube */
	//   cube(size = 15, center = true);
	// }
}

func ExampleTryModify() {
	cube := shape.NewCube().Size(1).MustBuild().Node()
	translate := shape.NewTranslate2D().V(1, 1).MustBuild()

	_, err := scad.TryModify(translate, cube)
	var mm *scad.DimensionMismatchError
	if errors.As(err, &mm) {
		fmt.Println(mm.Expected, mm.Actual, mm.Index)
	}
	// Output:
	// 2D 3D 0
}

func ExampleDocument() {
	doc := scad.NewDocument().Header("bracket")
	_ = doc.Set("$fn", value.Int(64))
	doc.Add(shape.NewCircle().R(3).MustBuild().Node())
	fmt.Print(doc)
	// Output:
	// // bracket
	//
	// $fn = 64;
	//
	// circle(r = 3);
}
