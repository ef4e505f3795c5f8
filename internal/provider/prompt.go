package provider

import (
	"strings"

	"github.com/pcaldeira/contractdraft/constants"
)

// Prompts are Portuguese because the document classes this workflow covers
// (CNH, RG, CIN, comprovantes de endereço, contrato social, cartão CNPJ)
// are Brazilian.

const identityPrompt = `Você é um especialista em extração de dados de documentos brasileiros.

Analise este documento de identificação (pode ser CNH, CIN, RG, ou outro documento de identidade brasileiro) e extraia TODAS as informações visíveis.

CAMPOS OBRIGATÓRIOS (extraia mesmo se parcialmente visíveis):
- name: Nome completo EXATAMENTE como aparece no documento
- birth_date: Data de nascimento no formato DD/MM/AAAA
- cpf: CPF com 11 dígitos (pode ter pontos e traço)

CAMPOS OPCIONAIS (extraia se visíveis):
- nationality: Nacionalidade
- civil_state: Estado civil se visível
- regime: Regime de bens, se casado
- profession: Profissão
- rg: Número do RG/Identidade
- rg_issuer: Órgão emissor do RG (ex: SSP/SC)
- address: Endereço completo se visível

INSTRUÇÕES IMPORTANTES:
1. Leia o documento com MUITA atenção, letra por letra
2. Datas devem estar no formato DD/MM/AAAA
3. Se não conseguir ler um campo, omita-o do JSON
4. NÃO invente dados - só inclua o que está claramente legível

Retorne APENAS um objeto JSON válido, sem explicações.`

const addressPrompt = `Você é um especialista em extração de dados de comprovantes de endereço brasileiros.

Analise este comprovante de endereço (pode ser conta de luz, água, telefone, internet, banco, ou outro) e extraia as informações.

CAMPOS A EXTRAIR:
- holder_name: Nome do titular/cliente que aparece no documento
- street: Nome da rua/avenida/logradouro
- number: Número do imóvel
- complement: Complemento (apartamento, bloco, sala, etc) - se houver
- neighborhood: Bairro
- city: Cidade
- state: Estado (sigla UF, ex: SP, SC, RJ)
- zip_code: CEP no formato 00000-000
- full_address: Endereço completo formatado como: "Rua Nome, 123, Complemento, Bairro, Cidade/UF, CEP 00000-000"

INSTRUÇÕES:
1. Leia cuidadosamente todos os campos de endereço
2. O CEP geralmente está próximo ao endereço
3. Se não conseguir ler um campo, omita-o
4. NÃO invente dados

Retorne APENAS um objeto JSON válido.`

const companyPrompt = `Você é um assistente jurídico especializado em documentos societários brasileiros.

Analise este documento de empresa (Contrato Social, Cartão CNPJ, registro na Junta Comercial) e extraia as informações em formato JSON:
- company_name: Razão Social completa
- cnpj: CNPJ, se visível
- company_address: Endereço da Sede formatado como: Logradouro, Número, Complemento, Bairro, Cidade/UF, CEP 00000-000
- company_object: Objeto Social resumido
- company_cnae_list: Lista de CNAEs/Atividades separadas por vírgula
- start_date: Data de Início no formato DD/MM/AAAA
- capital_currency: Capital Social em R$
- total_quotas: Total de Quotas
- quota_value: Valor por Quota
- forum_city: Cidade do Foro

IMPORTANTE: Formate os endereços de forma limpa e legível, removendo quebras de linha e caracteres estranhos. Se não conseguir ler um campo, omita-o.

Retorne APENAS o JSON.`

// SystemPrompt returns the extraction instructions for a document role.
func SystemPrompt(role constants.DocumentRole) string {
	switch role {
	case constants.RoleAddressProof:
		return addressPrompt
	case constants.RoleCompany:
		return companyPrompt
	default:
		return identityPrompt
	}
}

// UserTextPrompt packages probed PDF text for a text-only provider call.
// The text is capped so prompts stay within provider limits.
func UserTextPrompt(text string) string {
	const maxChars = 10_000
	text = strings.TrimSpace(text)
	var b strings.Builder
	b.WriteString("Texto do documento:\n\n")
	if len(text) > maxChars {
		b.WriteString(text[:maxChars])
		b.WriteString("\n…(truncado)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
