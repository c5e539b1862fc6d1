// Package kafka publishes and consumes domain events over Kafka.
//
// Messages are keyed by order id and spread with a hash balancer, so every
// event of one order lands on the same partition and is consumed in order.
package kafka

import (
	"strings"
)

// Brokers splits a comma separated broker list, ignoring blanks. An empty
// result means Kafka is not configured.
func Brokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
