// Package services implements the driving ports with the application's
// business logic. Services depend only on domain types and driven ports;
// storage adapters are injected at startup.
package services
