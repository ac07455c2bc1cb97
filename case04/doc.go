// Package case04 implements the dictionary-coded transaction codec: four
// categorical columns (mining pool, currency, transaction type, transaction
// status) are stored once each as a first-occurrence-order dictionary and
// referenced per row by a uvarint code; every other field is stored as a
// literal length-prefixed UTF-8 string, since the dataset's monetary and
// identifier fields carry more precision than a fixed-point integer could
// losslessly hold.
package case04
