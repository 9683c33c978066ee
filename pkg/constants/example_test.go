package constants_test

import (
	"fmt"

	"github.com/stable/endpoints/pkg/constants"
)

// Example shows the default base address and the variable that overrides it.
func Example() {
	fmt.Println(constants.DefaultBaseURL)
	fmt.Println(constants.EnvBaseURL)
	// Output:
	// http://127.0.0.1:8787
	// ENDPOINTS_BASE_URL
}
