// Package fixtures holds the bundled sample snapshots the validator runs
// against. They are literals, not loaded from disk.
package fixtures

import (
	cn "predeploy.dev/cli/internal/core/confignode"
)

// ProdConfig is the production environment snapshot.
func ProdConfig() *cn.Node {
	return cn.NewNode(
		cn.F("service", cn.Object(cn.NewNode(
			cn.F("name", cn.String("payment-service")),
			cn.F("version", cn.String("1.4.2")),
		))),
		cn.F("transaction", cn.Object(cn.NewNode(
			cn.F("timeout", cn.Int(5000)),
			cn.F("retries", cn.Int(3)),
		))),
		cn.F("featureFlags", cn.Object(cn.NewNode(
			cn.F("enableNewUI", cn.Bool(true)),
			cn.F("enableDiscounts", cn.Bool(false)),
		))),
		cn.F("commit", cn.String("prod-abc123")),
	)
}

// DevConfig is the development environment snapshot.
func DevConfig() *cn.Node {
	return cn.NewNode(
		cn.F("service", cn.Object(cn.NewNode(
			cn.F("name", cn.String("payment-service")),
			cn.F("version", cn.String("1.4.2")),
		))),
		cn.F("transaction", cn.Object(cn.NewNode(
			cn.F("timeout", cn.String("5000")),
		))),
		cn.F("featureFlags", cn.Object(cn.NewNode(
			cn.F("enableNewUI", cn.Bool(true)),
			cn.F("enableBetaTesting", cn.Bool(true)),
		))),
		cn.F("commit", cn.String("dev-xyz888")),
	)
}

// QAConfig is the QA environment snapshot.
func QAConfig() *cn.Node {
	return cn.NewNode(
		cn.F("service", cn.Object(cn.NewNode(
			cn.F("name", cn.String("payment-service")),
			cn.F("version", cn.String("1.4.1")),
		))),
		cn.F("featureFlags", cn.Object(cn.NewNode(
			cn.F("enableNewUI", cn.Bool(false)),
			cn.F("enableDiscounts", cn.Bool(false)),
		))),
		cn.F("commit", cn.String("qa-55fa22")),
	)
}

// MainProdConfig is the production snapshot on the main branch.
func MainProdConfig() *cn.Node {
	return cn.NewNode(
		cn.F("transaction", cn.Object(cn.NewNode(
			cn.F("timeout", cn.Int(5000)),
			cn.F("retries", cn.Int(3)),
			cn.F("maxAmount", cn.Int(100000)),
		))),
	)
}

// FeatureBranchProdConfig is the production snapshot on a feature branch.
func FeatureBranchProdConfig() *cn.Node {
	return cn.NewNode(
		cn.F("transaction", cn.Object(cn.NewNode(
			cn.F("timeout", cn.Int(5000)),
			cn.F("retries", cn.Int(3)),
		))),
	)
}
