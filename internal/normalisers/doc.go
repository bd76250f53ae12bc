// Package normalisers turns raw export files into structured records.
// Each subpackage handles one file format; tabular decodes the delimited
// text tables a network data export is made of.
package normalisers
