// Package fuzztests houses Go fuzz harnesses for the analysis pipeline
// (source -> lexer -> symbols -> check -> query). The goal is to guard against
// panics and broken position bookkeeping on arbitrary inputs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
