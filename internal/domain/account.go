package domain

// Account representa uma conta de vendedor do MercadoLibre descoberta via variáveis
// de ambiente. O RefreshToken é o único campo mutável: ele é substituído em memória
// a cada troca bem-sucedida, já que os refresh tokens do MeLi são de uso único.
type Account struct {
	Name         string
	Empresa      string
	AppID        string
	SecretKey    string
	RefreshToken string
	UserID       string
}
