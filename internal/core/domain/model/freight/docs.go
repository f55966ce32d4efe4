// Package freight prices a shipment by weight. Each freight type is a closed
// variant of the Calculator capability, selected through the Registry by its
// three-letter code.
//
// Pricing rules:
//   - Express (EXP): weight * 1.5 + 10
//   - Standard (PAD): weight * 1.2
//   - Economy (ECO): weight * 1.1 - 5
//
// Calculators do not round; presentation layers round to two decimals.
package freight
