// Command shamir-recover recovers the secrets of the case files in a
// directory and prints one result per case. It exits with a non-zero status
// if any case could not be solved.
package main

import (
	"context"
	"os"

	zap "github.com/Laisky/zap"

	"github.com/renproject/shamir-recovery/log"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		log.Shared.Error("shamir-recover", zap.Error(err))
		os.Exit(1)
	}
}
