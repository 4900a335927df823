package meshcode_test

import (
	"errors"
	"fmt"

	"github.com/woozymasta/jpmesh/internal/geo"
	"github.com/woozymasta/jpmesh/internal/meshcode"
)

func ExampleDecode() {
	p, err := meshcode.Decode("53393599")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f %.6f\n", p.Lat, p.Lng)

	_, err = meshcode.Decode("22222")
	fmt.Println(errors.Is(err, meshcode.ErrInvalidLength))
	// Output:
	// 35.658333 139.737500
	// true
}

func ExampleEncode() {
	code, _ := meshcode.Encode(geo.NewPoint(35.65864183184921, 139.74544075634395))
	fmt.Println(code, code[:8])
	// Output: 5339359921 53393599
}
