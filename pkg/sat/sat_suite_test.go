package sat_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSat(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sat Suite")
}
