package kinematics_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestKinematics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Kinematics Suite")
}
