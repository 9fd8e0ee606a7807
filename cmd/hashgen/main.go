// hashgen imprime o hash bcrypt de uma senha passada como argumento.
// Útil para popular usuários direto no banco em ambiente de desenvolvimento.
//
//	go run ./cmd/hashgen minha-senha
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: hashgen <senha>")
		os.Exit(2)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gerar hash:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
